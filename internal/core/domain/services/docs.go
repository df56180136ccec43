// Package services contains domain services implementing business logic that
// spans more than one model concept.
//
// OrderClassifier maps one order — and, for lookup-type orders, the outcome
// of the external lookup — to a new status and priority. It never decides how
// the outcome is persisted or reported; that is the pipeline's job.
package services
