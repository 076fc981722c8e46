// Package identity holds the resolved caller identity. Every authorization
// decision in the ticket and note lifecycles starts from a Caller value
// rather than from raw token claims.
package identity

// Caller is the authenticated principal acting on a request: a regular user
// who owns tickets, or a med user who claims and answers them.
type Caller struct {
	ID        uint
	IsMedUser bool
}

// CanCreateTickets reports whether the caller may open new tickets.
// Only regular users create tickets.
func (c Caller) CanCreateTickets() bool {
	return !c.IsMedUser
}

// CanWorkQueue reports whether the caller may browse the open-ticket queue
// and claim from it.
func (c Caller) CanWorkQueue() bool {
	return c.IsMedUser
}

// CanKeepNotes reports whether the caller may hold personal clinical notes.
// Notes belong to regular users; med users are denied entirely.
func (c Caller) CanKeepNotes() bool {
	return !c.IsMedUser
}
