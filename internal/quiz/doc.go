// Package quiz parses plain-text question/answer files. Pairs are
// separated by blank lines; within a pair the first line is the
// question and the second line is the answer.
package quiz
