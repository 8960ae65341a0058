// Package wol wakes the camera over the network before any HTTP
// control traffic can reach it.
package wol

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// WakePort is the discard port the magic packet is addressed to.
const WakePort = 9

// ParseMAC accepts the standard colon/hyphen/dot notations plus the
// bare 12-digit hex form used in older config files.
func ParseMAC(s string) (net.HardwareAddr, error) {
	if len(s) == 12 && !strings.ContainsAny(s, ":-.") {
		var b strings.Builder
		for i := 0; i < 12; i += 2 {
			if i > 0 {
				b.WriteByte(':')
			}
			b.WriteString(s[i : i+2])
		}
		s = b.String()
	}
	hw, err := net.ParseMAC(s)
	if err != nil {
		return nil, err
	}
	if len(hw) != 6 {
		return nil, fmt.Errorf("mac %q: need a 6-byte address", s)
	}
	return hw, nil
}

// MagicPacket builds the 102-byte Wake-on-LAN payload: six 0xFF bytes
// followed by the MAC repeated sixteen times.
func MagicPacket(hw net.HardwareAddr) []byte {
	packet := make([]byte, 0, 102)
	for i := 0; i < 6; i++ {
		packet = append(packet, 0xFF)
	}
	for i := 0; i < 16; i++ {
		packet = append(packet, hw...)
	}
	return packet
}

// SendTo writes the magic packet for mac to addr over UDP with
// SO_BROADCAST enabled, so broadcast destinations work too.
func SendTo(addr, mac string) error {
	hw, err := ParseMAC(mac)
	if err != nil {
		return fmt.Errorf("parsing mac: %w", err)
	}
	udpAddr, err := net.ResolveUDPAddr("udp4", addr)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", addr, err)
	}
	conn, err := net.DialUDP("udp4", nil, udpAddr)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", addr, err)
	}
	defer conn.Close()

	if err := enableBroadcast(conn); err != nil {
		return fmt.Errorf("enabling broadcast: %w", err)
	}
	if _, err := conn.Write(MagicPacket(hw)); err != nil {
		return fmt.Errorf("sending magic packet: %w", err)
	}
	return nil
}

// Wake sends the magic packet for mac to ip on the wake port.
func Wake(ip, mac string) error {
	return SendTo(net.JoinHostPort(ip, strconv.Itoa(WakePort)), mac)
}
