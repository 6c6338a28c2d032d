package main

import "github.com/horgh/irc"

// asMessage adapts a parsed prefix/verb/params triple to horgh/irc's
// Message type, catbox's domain representation for a protocol line. It is
// used only for debug logging (Message.String()) of each parsed line before
// dispatch; handlers receive the plain prefix/verb/params values. Outbound
// reply lines are built directly as literal
// strings rather than via Message.Encode, because Encode's optional
// leading ':' (added only when a parameter contains a space, is empty, or
// itself starts with ':') does not reproduce several of spec.md §4.4's
// fixed reply formats (e.g. JOIN's "<nick> JOIN :<channel>" always
// quotes the channel). See DESIGN.md.
func asMessage(prefix, verb string, params []string) irc.Message {
	return irc.Message{
		Prefix:  prefix,
		Command: verb,
		Params:  params,
	}
}
