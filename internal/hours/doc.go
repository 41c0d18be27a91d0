// Package hours is the time-accounting engine: it turns a day's raw punch tokens into worked
// and break time, measures the day against the eight-hour quota and folds a month of days into
// a running minute balance.
//
// Everything here is pure and synchronous. Reading prior balances and persisting the result is
// left to the caller.
package hours
