package utils

import (
	"testing"

	"github.com/netinspect/asicview/pkg/test/assert"
)

func TestKeyObjectID(t *testing.T) {
	var cases = []struct {
		key string
		exp string
	}{
		{"ASIC_STATE:SAI_OBJECT_TYPE_BRIDGE_PORT:oid:0x3a000000000616", "oid:0x3a000000000616"},
		{"ASIC_STATE:SAI_OBJECT_TYPE_VLAN:oid:0x26000000000aef", "oid:0x26000000000aef"},
		{"ASIC_STATE:SAI_OBJECT_TYPE_FDB_ENTRY:{\"mac\":\"52:54:00:25:06:E9\"}", "{\"mac\":\"52:54:00:25:06:E9\"}"},
		{"no-separators", ""},
		{"one:separator", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.exp, KeyObjectID(c.key))
	}
}

func TestOidValue(t *testing.T) {
	v, err := OidValue("oid:0x26000000000aef")
	assert.NilErr(t, err)
	assert.Equal(t, uint64(0x26000000000aef), v)

	v, err = OidValue("0x10")
	assert.NilErr(t, err)
	assert.Equal(t, uint64(16), v)

	_, err = OidValue("oid:0xnope")
	assert.Err(t, err)

	_, err = OidValue("")
	assert.Err(t, err)
}

func TestKeySegments(t *testing.T) {
	assert.Equal(t, "Linecard4|Asic0|Ethernet12", TableKeySuffix("SYSTEM_PORT_TABLE|Linecard4|Asic0|Ethernet12"))
	assert.Equal(t, "", TableKeySuffix("SYSTEM_PORT_TABLE"))
	assert.Equal(t, "Ethernet12", LastKeySegment("Linecard4|Asic0|Ethernet12"))
	assert.Equal(t, "Ethernet12", LastKeySegment("Ethernet12"))
	assert.Equal(t, "Linecard4", FirstKeySegment("Linecard4|Asic0|Ethernet12"))
	assert.Equal(t, "Linecard4", FirstKeySegment("Linecard4"))
}
