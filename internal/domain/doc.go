// Package domain defines the core business entities of the application:
// users, alarms, study sessions, and books. Entities carry their own
// validation rules and the pure state logic (lazy session transitions,
// reading-progress math) that the service layer builds on.
package domain
