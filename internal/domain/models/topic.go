// internal/domain/models/topic.go
package models

import "strconv"

// Topic is a catalog entry shown on the landing page.
//
// Completed is carried for display but nothing sets it; it is always false.
type Topic struct {
	ID          string `bson:"_id" json:"id" yaml:"id"`
	Title       string `bson:"title" json:"title" yaml:"title"`
	Description string `bson:"description" json:"description" yaml:"description"`
	Category    string `bson:"category" json:"category" yaml:"category"`
	Difficulty  int    `bson:"difficulty" json:"difficulty" yaml:"difficulty"`
	Duration    string `bson:"duration" json:"duration" yaml:"duration"`
	Completed   bool   `bson:"completed" json:"completed" yaml:"completed"`
	Icon        string `bson:"icon" json:"icon" yaml:"icon"`
	Position    int    `bson:"position" json:"-" yaml:"-"` // catalog order when stored in Mongo
}

// TopicContent is the full learning material for one topic, keyed by the
// same identifier as Topic.
type TopicContent struct {
	ID           string        `bson:"_id" json:"id" yaml:"id"`
	Title        string        `bson:"title" json:"title" yaml:"title"`
	Description  string        `bson:"description" json:"description" yaml:"description"`
	Category     string        `bson:"category" json:"category" yaml:"category"`
	Difficulty   int           `bson:"difficulty" json:"difficulty" yaml:"difficulty"`
	Duration     string        `bson:"duration" json:"duration" yaml:"duration"`
	Icon         string        `bson:"icon" json:"icon" yaml:"icon"`
	Overview     string        `bson:"overview" json:"overview" yaml:"overview"`
	Concepts     []string      `bson:"concepts" json:"concepts" yaml:"concepts"`
	CodeExamples []CodeExample `bson:"code_examples" json:"code_examples" yaml:"code_examples"`
	Exercises    []Exercise    `bson:"exercises" json:"exercises" yaml:"exercises"`
	KeyPoints    []string      `bson:"key_points" json:"key_points" yaml:"key_points"`
}

// CodeExample is one titled code sample with an explanation.
type CodeExample struct {
	Title       string `bson:"title" json:"title" yaml:"title"`
	Code        string `bson:"code" json:"code" yaml:"code"`
	Explanation string `bson:"explanation" json:"explanation" yaml:"explanation"`
}

// Exercise is a practice task with a hint. Exercises are never executed or graded.
type Exercise struct {
	Title       string `bson:"title" json:"title" yaml:"title"`
	Description string `bson:"description" json:"description" yaml:"description"`
	Hint        string `bson:"hint" json:"hint" yaml:"hint"`
}

// ExampleID returns the indicator key for the code example at index i.
func ExampleID(i int) string {
	return "example-" + strconv.Itoa(i)
}
