package main

import "strings"

// handlerFunc is one dispatcher table entry (spec.md §9: "Prefer a table
// from uppercase verb to handler closure over a long conditional chain").
type handlerFunc func(s *Server, c *Client, params []string)

var handlers = map[string]handlerFunc{
	"NICK":    handleNICK,
	"USER":    handleUSER,
	"PING":    handlePING,
	"JOIN":    handleJOIN,
	"PART":    handlePART,
	"PRIVMSG": handlePRIVMSG,
	"NOTICE":  handleNOTICE,
	"QUIT":    handleQUIT,
}

// dispatch routes one parsed command to its handler (spec.md §4.4), or
// replies 421 for a verb with no handler.
func (s *Server) dispatch(c *Client, _ string, verb string, params []string) {
	h, ok := handlers[verb]
	if !ok {
		s.numeric(c, "421", []string{verb}, "Unknown command")
		return
	}
	h(s, c, params)
}

// numeric sends a server numeric reply in the form
// ":<server-name> <code> <target> [<args>] :<text>\r\n" (spec.md §4.4).
func (s *Server) numeric(c *Client, code string, args []string, text string) {
	parts := []string{":" + s.Config.ServerName, code, c.displayNick()}
	parts = append(parts, args...)
	line := strings.Join(parts, " ") + " :" + text + "\r\n"
	c.send(line)
}

// maybeRegister transitions c to REGISTERED exactly once, when both
// Nickname and Username are set, emitting the post-registration batch
// (spec.md §4.3).
func (s *Server) maybeRegister(c *Client) {
	if c.Registered || c.Nickname == "" || c.Username == "" {
		return
	}

	c.Registered = true

	s.numeric(c, "001", nil, "Welcome to the mini IRC server")
	s.numeric(c, "375", nil, "- "+s.Config.ServerName+" Message of the day - ")
	s.numeric(c, "372", nil, "- "+s.Config.MOTD)
	s.numeric(c, "376", nil, "End of /MOTD command.")
}

func isValidNickname(n string) bool {
	if len(n) < 1 || len(n) > 9 {
		return false
	}
	first := n[0]
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return false
	}
	for i := 1; i < len(n); i++ {
		ch := n[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
		case ch == '-' || ch == '_':
		default:
			return false
		}
	}
	return true
}

func handleNICK(s *Server, c *Client, params []string) {
	if len(params) == 0 {
		s.numeric(c, "431", nil, "No nickname given")
		return
	}
	nick := params[0]

	if !isValidNickname(nick) {
		s.numeric(c, "432", []string{nick}, "Erroneous nickname")
		return
	}

	if existing, exists := s.lookupByNick(nick); exists && existing.ID != c.ID {
		s.numeric(c, "433", []string{nick}, "Nickname is already in use")
		return
	}

	oldNick := c.Nickname
	wasRegistered := c.Registered

	if oldNick != "" {
		delete(s.Nicks, oldNick)
	}
	s.Nicks[nick] = c
	c.Nickname = nick

	if wasRegistered {
		s.broadcastToAll(":"+oldNick+" NICK :"+nick+"\r\n", nil)
	}

	s.maybeRegister(c)
}

func handleUSER(s *Server, c *Client, params []string) {
	if len(params) < 4 {
		s.numeric(c, "461", []string{"USER"}, "Not enough parameters")
		return
	}
	if c.Registered {
		s.numeric(c, "462", nil, "You may not reregister")
		return
	}

	c.Username = params[0]
	c.Hostname = params[1]
	// params[2] is the mode-or-servername field; spec.md §4.4 ignores it.
	c.RealName = params[3]

	s.maybeRegister(c)
}

func handlePING(s *Server, c *Client, params []string) {
	if len(params) == 0 {
		s.numeric(c, "409", nil, "No origin specified")
		return
	}
	c.send(":" + c.displayNick() + " PONG " + s.Config.ServerName + " :" + params[0] + "\r\n")
}

func handleJOIN(s *Server, c *Client, params []string) {
	if len(params) == 0 {
		s.numeric(c, "461", []string{"JOIN"}, "Not enough parameters")
		return
	}
	name := params[0]
	if !strings.HasPrefix(name, "#") {
		s.numeric(c, "476", []string{name}, "Invalid channel name")
		return
	}

	if _, already := c.Channels[name]; already {
		return
	}

	ch, exists := s.Channels[name]
	if !exists {
		ch = newChannel(name)
		s.Channels[name] = ch
	}

	ch.addMember(c)
	c.Channels[name] = ch

	ch.broadcast(":"+c.Nickname+" JOIN :"+name+"\r\n", nil)

	s.numeric(c, "332", []string{name}, "No topic is set")

	var nicks []string
	for _, member := range ch.orderedMembers() {
		nicks = append(nicks, member.Nickname)
	}
	s.numeric(c, "353", []string{"=", name}, strings.Join(nicks, " ")+" ")

	s.numeric(c, "366", []string{name}, "End of /NAMES list.")
}

func handlePART(s *Server, c *Client, params []string) {
	if len(params) == 0 {
		s.numeric(c, "461", []string{"PART"}, "Not enough parameters")
		return
	}
	name := params[0]

	ch, exists := s.Channels[name]
	if !exists {
		s.numeric(c, "403", []string{name}, "No such channel")
		return
	}
	if _, member := c.Channels[name]; !member {
		s.numeric(c, "442", []string{name}, "You're not on that channel")
		return
	}

	ch.removeMember(c)
	delete(c.Channels, name)

	ch.broadcast(":"+c.Nickname+" PART "+name+"\r\n", nil)

	if len(ch.Members) == 0 {
		delete(s.Channels, name)
	}
}

func handlePRIVMSG(s *Server, c *Client, params []string) {
	deliverMessage(s, c, params, "PRIVMSG", true)
}

func handleNOTICE(s *Server, c *Client, params []string) {
	deliverMessage(s, c, params, "NOTICE", false)
}

// deliverMessage implements the shared PRIVMSG/NOTICE routing rules
// (spec.md §4.4). NOTICE never emits an error reply: reportErrors is false
// for it and every early return becomes silent.
func deliverMessage(s *Server, c *Client, params []string, verb string, reportErrors bool) {
	if len(params) < 2 {
		if reportErrors {
			s.numeric(c, "461", []string{verb}, "Not enough parameters")
		}
		return
	}
	target := params[0]
	text := params[1]

	if text == "" {
		if reportErrors {
			s.numeric(c, "412", nil, "No text to send")
		}
		return
	}

	line := ":" + c.Nickname + " " + verb + " " + target + " :" + text + "\r\n"

	if strings.HasPrefix(target, "#") {
		ch, exists := s.Channels[target]
		if !exists {
			if reportErrors {
				s.numeric(c, "401", []string{target}, "No such nick/channel")
			}
			return
		}
		if _, member := c.Channels[target]; !member {
			if reportErrors {
				s.numeric(c, "442", []string{target}, "You're not on that channel")
			}
			return
		}
		ch.broadcast(line, c)
		return
	}

	targetClient, exists := s.lookupByNick(target)
	if !exists {
		if reportErrors {
			s.numeric(c, "401", []string{target}, "No such nick/channel")
		}
		return
	}
	targetClient.send(line)
}

func handleQUIT(s *Server, c *Client, params []string) {
	reason := "Quit"
	if len(params) > 0 {
		reason = "Quit :" + params[0]
	}
	s.broadcastToAll(":"+c.Nickname+" QUIT :"+reason+"\r\n", c)
	c.Disconnecting = true
}
