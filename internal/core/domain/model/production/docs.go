// Package production models the global, fixed sequence of manufacturing steps
// that every order line item progresses through. Steps are compared by their
// order index; line items may skip forward but never move back.
package production
