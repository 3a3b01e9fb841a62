// Package notify delivers consolidated run reports via pluggable notifiers.
//
// The default implementation resolves a distribution group to recipient
// addresses from a JSON mailing-list file and sends one plain-text email over
// SMTP. It gracefully degrades to a no-op when no SMTP server is configured,
// so checks can run (and exit codes still apply) on hosts without mail
// access. All checker code depends only on the Service interface.
package notify
