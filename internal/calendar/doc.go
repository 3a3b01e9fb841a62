// Package calendar resolves fuzzy date selections into concrete, validated
// time windows.
//
// A Window identifies one bucket of completeness checking: a whole month, a
// single day, or a single hour of a day. Resolution modes cover explicit
// dates, the previous month, the current month (stopping at yesterday, or
// degrading to the previous month on the 1st), and the hour modes used by the
// feed checker. All hour handling is in UTC because upstream collection
// events are timestamped in UTC.
package calendar
