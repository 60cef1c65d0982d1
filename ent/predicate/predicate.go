// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LessonSession is the predicate function for lessonsession builders.
type LessonSession func(*sql.Selector)

// ProgressEvent is the predicate function for progressevent builders.
type ProgressEvent func(*sql.Selector)
