// Package model provides the data structures shared between the dataflow
// engine and its options. It defines the description of an executed step and
// the hook interface implemented by pipeline options such as the drawer and
// the tracer.
package model
