// Package prompt asks the six generator questions. SurveyAsker drives an
// interactive terminal; LineAsker reads plain lines and works on pipes.
package prompt
