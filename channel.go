package main

// Channel holds a named group of clients (spec.md §3). It exists only
// while Members is non-empty.
type Channel struct {
	// Name is canonicalized only by being compared case-sensitively; spec.md
	// does not fold channel name case.
	Name string

	// Members maps client ID to client, for O(1) membership tests and
	// removal (catbox's Members-by-ID idiom).
	Members map[uint64]*Client

	// order records join order, for deterministic NAMES / broadcast
	// iteration (spec.md §4.4 "current members ... in channel order").
	order []uint64
}

// newChannel creates an empty Channel. Callers must add at least one member
// immediately: a Channel with no members must not exist in the registry
// (spec.md §3).
func newChannel(name string) *Channel {
	return &Channel{
		Name:    name,
		Members: make(map[uint64]*Client),
	}
}

// addMember adds c to the channel if it is not already a member.
func (ch *Channel) addMember(c *Client) {
	if _, exists := ch.Members[c.ID]; exists {
		return
	}
	ch.Members[c.ID] = c
	ch.order = append(ch.order, c.ID)
}

// removeMember removes c from the channel.
func (ch *Channel) removeMember(c *Client) {
	if _, exists := ch.Members[c.ID]; !exists {
		return
	}
	delete(ch.Members, c.ID)
	for i, id := range ch.order {
		if id == c.ID {
			ch.order = append(ch.order[:i], ch.order[i+1:]...)
			break
		}
	}
}

// orderedMembers returns members in join order.
func (ch *Channel) orderedMembers() []*Client {
	members := make([]*Client, 0, len(ch.order))
	for _, id := range ch.order {
		if c, ok := ch.Members[id]; ok {
			members = append(members, c)
		}
	}
	return members
}

// broadcast sends line to every member except sender (which may be nil to
// send to everyone).
func (ch *Channel) broadcast(line string, sender *Client) {
	for _, c := range ch.orderedMembers() {
		if sender != nil && c.ID == sender.ID {
			continue
		}
		c.send(line)
	}
}
