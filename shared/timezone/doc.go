// Package timezone centralizes time handling so that every timestamp the service
// produces is expressed in the configured application timezone, and calendar-date
// values (booking check-in/check-out) compare as dates rather than instants.
package timezone
