// Package review models the feedback a buyer or seller leaves once an order
// is delivered, and the rating summary derived from it.
package review
