package wol

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagicPacketLayout(t *testing.T) {
	hw, err := net.ParseMAC("aa:bb:cc:dd:ee:ff")
	require.NoError(t, err)

	packet := MagicPacket(hw)
	require.Len(t, packet, 102)
	assert.Equal(t, bytes.Repeat([]byte{0xFF}, 6), packet[:6])
	for i := 0; i < 16; i++ {
		start := 6 + i*6
		assert.Equal(t, []byte(hw), packet[start:start+6], "repetition %d", i)
	}
	assert.Equal(t, packet, MagicPacket(hw), "packet must be deterministic")
}

func TestParseMACBareHex(t *testing.T) {
	want, err := net.ParseMAC("aa:bb:cc:dd:ee:ff")
	require.NoError(t, err)

	got, err := ParseMAC("aabbccddeeff")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseMACStandardForms(t *testing.T) {
	for _, s := range []string{"aa:bb:cc:dd:ee:ff", "aa-bb-cc-dd-ee-ff", "aabb.ccdd.eeff"} {
		hw, err := ParseMAC(s)
		require.NoError(t, err, "form %s", s)
		assert.Len(t, []byte(hw), 6)
	}
}

func TestParseMACRejectsInvalid(t *testing.T) {
	_, err := ParseMAC("not-a-mac")
	assert.Error(t, err)

	_, err = ParseMAC("02:00:5e:10:00:00:00:01")
	assert.Error(t, err, "EUI-64 addresses cannot wake the camera")
}

func TestSendToDeliversPacket(t *testing.T) {
	listener, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer listener.Close()

	require.NoError(t, SendTo(listener.LocalAddr().String(), "aabbccddeeff"))

	require.NoError(t, listener.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 256)
	n, _, err := listener.ReadFromUDP(buf)
	require.NoError(t, err)

	hw, _ := net.ParseMAC("aa:bb:cc:dd:ee:ff")
	assert.Equal(t, MagicPacket(hw), buf[:n])
}

func TestSendToRejectsBadMAC(t *testing.T) {
	err := SendTo("127.0.0.1:9", "zz:zz:zz:zz:zz:zz")
	assert.Error(t, err)
}
