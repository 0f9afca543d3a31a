// Package domain contains the core CareerOS entities: users and their
// profiles, JD analyses, hunter sessions with their job results, and tracked
// applications. The types carry no infrastructure concerns so storage, services
// and handlers can share them.
package domain
