// Package service implements the application's business operations over
// the store interfaces: the alarm registry and due-check, the study
// session lifecycle, book reading progress, and the dashboard aggregates.
// Every service receives the clock and the authenticated user's ID
// explicitly; nothing here reads ambient state.
package service
