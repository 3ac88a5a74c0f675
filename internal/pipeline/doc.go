// Package pipeline runs the processing steps of one vic-catparser invocation.
//
// A run moves through four steps in a fixed order: load the Project VIC
// document, filter its records by category, render the matches, and write the
// rendered bytes to the destination. Each step is a Step that reads and fills
// in a shared model.Run. The pipeline stops at the first failing step and
// checks for cancellation between steps.
package pipeline
