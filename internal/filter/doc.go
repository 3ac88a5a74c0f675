// Package filter selects the records of a Project VIC document that belong
// to a requested Category.
package filter
