// Package lookup models the outcome of the external lookup service.
//
// The payload of a lookup response is opaque on the wire: it may be a number,
// a numeric string, or something else entirely. The variant is decided once,
// at the collaborator boundary, so the classifier performs a total match on
// Payload instead of a fallible runtime conversion.
package lookup

import "github.com/shopspring/decimal"

// ResponseStatus is the status tag of a lookup response.
type ResponseStatus string

const (
	// StatusSuccess marks a lookup that produced a payload.
	StatusSuccess ResponseStatus = "success"

	// StatusError marks a lookup the service answered but could not fulfil.
	// Any tag other than StatusSuccess is treated the same way.
	StatusError ResponseStatus = "error"
)

// PayloadKind discriminates the payload variant.
type PayloadKind int

const (
	// PayloadOther covers payloads that are neither numeric nor textual.
	PayloadOther PayloadKind = iota

	// PayloadNumber covers numeric payloads, including numeric strings.
	PayloadNumber

	// PayloadText covers non-numeric string payloads.
	PayloadText
)

// Payload is the tagged payload variant of a lookup response.
type Payload struct {
	kind   PayloadKind
	number decimal.Decimal
	text   string
}

// NumberPayload builds a numeric payload.
func NumberPayload(value decimal.Decimal) Payload {
	return Payload{kind: PayloadNumber, number: value}
}

// TextPayload builds a non-numeric string payload.
func TextPayload(value string) Payload {
	return Payload{kind: PayloadText, text: value}
}

// OtherPayload builds a payload for anything that is neither a number nor a string.
func OtherPayload() Payload {
	return Payload{kind: PayloadOther}
}

// Kind returns the payload variant tag.
func (p Payload) Kind() PayloadKind {
	return p.kind
}

// Number returns the numeric value and true for numeric payloads,
// a zero decimal and false otherwise.
func (p Payload) Number() (decimal.Decimal, bool) {
	if p.kind != PayloadNumber {
		return decimal.Decimal{}, false
	}
	return p.number, true
}

// Text returns the string value and true for textual payloads.
func (p Payload) Text() (string, bool) {
	if p.kind != PayloadText {
		return "", false
	}
	return p.text, true
}

// Response is the outcome of one lookup call.
type Response struct {
	Status  ResponseStatus
	Payload Payload
}

// Succeeded reports whether the response carries the success tag.
func (r Response) Succeeded() bool {
	return r.Status == StatusSuccess
}
