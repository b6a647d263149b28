// Package staff models who is acting on the system. It provides the Role
// enumeration (ADMIN, GARCOM) and the Actor value object carrying a verified
// identity and role through each request.
//
// Authentication itself (passwords, sessions) is handled upstream; this
// package only represents the already-verified result.
package staff
