package main

import "testing"

func TestIsValidNickname(t *testing.T) {
	tests := []struct {
		nick string
		want bool
	}{
		{"alice", true},
		{"a", true},
		{"a-_Z9", true},
		{"", false},
		{"toolongnick9", false}, // 12 chars > 9
		{"9alice", false},       // leading digit
		{"-alice", false},       // leading dash
		{"al ice", false},       // space
		{"al.ice", false},       // dot not allowed
	}

	for _, test := range tests {
		if got := isValidNickname(test.nick); got != test.want {
			t.Errorf("isValidNickname(%q) = %v, wanted %v", test.nick, got, test.want)
		}
	}
}

func TestNumericFormat(t *testing.T) {
	s := newServer(Config{ServerName: "miniircd"})
	c := &Client{Nickname: "alice", WriteChan: make(chan string, 1)}

	s.numeric(c, "001", nil, "Welcome to the mini IRC server")

	got := <-c.WriteChan
	want := ":miniircd 001 alice :Welcome to the mini IRC server\r\n"
	if got != want {
		t.Errorf("numeric() = %q, wanted %q", got, want)
	}
}

func TestNumericFormatUnregisteredTarget(t *testing.T) {
	s := newServer(Config{ServerName: "miniircd"})
	c := &Client{WriteChan: make(chan string, 1)}

	s.numeric(c, "433", []string{"alice"}, "Nickname is already in use")

	got := <-c.WriteChan
	want := ":miniircd 433 * alice :Nickname is already in use\r\n"
	if got != want {
		t.Errorf("numeric() = %q, wanted %q", got, want)
	}
}

func TestHandleJOINNamesReply(t *testing.T) {
	s := newServer(Config{ServerName: "miniircd"})
	c := &Client{ID: 1, Nickname: "alice", WriteChan: make(chan string, 10), Channels: make(map[string]*Channel)}
	s.Nicks["alice"] = c

	handleJOIN(s, c, []string{"#chat"})

	var lines []string
	for i := 0; i < 4; i++ {
		lines = append(lines, <-c.WriteChan)
	}

	want := []string{
		":alice JOIN :#chat\r\n",
		":miniircd 332 alice #chat :No topic is set\r\n",
		":miniircd 353 alice = #chat :alice \r\n",
		":miniircd 366 alice #chat :End of /NAMES list.\r\n",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, wanted %q", i, lines[i], want[i])
		}
	}
}
