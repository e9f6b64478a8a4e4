package domain

import "strings"

// CustomerName collapses whitespace runs in a buyer-supplied name. It returns nil
// when no visible characters remain, so the status reports the name as null.
func CustomerName(raw string) *string {
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return nil
	}
	return &name
}

// CustomerEmail trims an address and lower-cases its domain; the local part is
// case-sensitive and kept as sent.
func CustomerEmail(raw string) *string {
	addr := strings.TrimSpace(raw)
	if addr == "" {
		return nil
	}
	if at := strings.LastIndexByte(addr, '@'); at >= 0 {
		addr = addr[:at] + strings.ToLower(addr[at:])
	}
	return &addr
}
