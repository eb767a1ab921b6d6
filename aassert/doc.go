// Package aassert provides assertions that go beyond what
// stretchr/testify/assert is offering.
//
// Every assertion follows the design of testify: it takes a testing.T,
// reports a failure via assert.Fail and returns whether it passed.
package aassert
