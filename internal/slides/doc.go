// Package slides turns parsed question/answer pairs into a presentation
// deck: one slide per question, followed by one slide per question with
// its answer shown in bold.
package slides
