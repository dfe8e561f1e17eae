package refmap

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/netinspect/asicview/pkg/store/mocks"
	"github.com/netinspect/asicview/pkg/test/assert"
)

func TestBuild(t *testing.T) {
	st := mocks.NewFakeStore().
		Set("ASIC_STATE:SAI_OBJECT_TYPE_HOSTIF:oid:0xd00000000056d", map[string]string{
			"SAI_HOSTIF_ATTR_OBJ_ID": "oid:0x10000000004a4",
			"SAI_HOSTIF_ATTR_NAME":   "Ethernet4",
		}).
		Set("ASIC_STATE:SAI_OBJECT_TYPE_HOSTIF:oid:0xd00000000056e", map[string]string{
			"SAI_HOSTIF_ATTR_OBJ_ID": "oid:0x10000000004a5",
			"SAI_HOSTIF_ATTR_NAME":   "Ethernet8",
		}).
		Set("ASIC_STATE:SAI_OBJECT_TYPE_BRIDGE_PORT:oid:0x3a000000000616", map[string]string{
			"SAI_BRIDGE_PORT_ATTR_PORT_ID": "oid:0x10000000004a4",
		})

	m, err := Build(context.Background(), st)
	assert.NilErr(t, err)
	assert.False(t, m.Empty())
	assert.Equal(t, "Ethernet4", m.Interfaces["oid:0x10000000004a4"])
	assert.Equal(t, "Ethernet8", m.Interfaces["oid:0x10000000004a5"])
	assert.Equal(t, "oid:0x10000000004a4", m.BridgePorts["oid:0x3a000000000616"])
}

func TestBuildEmptyNamespace(t *testing.T) {
	m, err := Build(context.Background(), mocks.NewFakeStore())
	assert.NilErr(t, err)
	assert.True(t, m.Empty())
	assert.Len(t, m.Interfaces, 0)
}

func TestBuildIncompleteObjects(t *testing.T) {
	st := mocks.NewFakeStore().
		Set("ASIC_STATE:SAI_OBJECT_TYPE_HOSTIF:oid:0xd00000000056d", map[string]string{
			"SAI_HOSTIF_ATTR_NAME": "Ethernet4", // no obj id
		}).
		Set("ASIC_STATE:SAI_OBJECT_TYPE_BRIDGE_PORT:oid:0x3a000000000616", map[string]string{})

	m, err := Build(context.Background(), st)
	assert.NilErr(t, err)
	assert.Len(t, m.Interfaces, 0)
	assert.True(t, m.Empty())
}

func TestBuildStoreError(t *testing.T) {
	st := mocks.NewFakeStore().
		Set("ASIC_STATE:SAI_OBJECT_TYPE_HOSTIF:oid:0xd00000000056d", map[string]string{
			"SAI_HOSTIF_ATTR_OBJ_ID": "oid:0x10000000004a4",
			"SAI_HOSTIF_ATTR_NAME":   "Ethernet4",
		})
	st.Errs["ASIC_STATE:SAI_OBJECT_TYPE_HOSTIF:oid:0xd00000000056d"] = errors.New("connection reset")

	_, err := Build(context.Background(), st)
	assert.Err(t, err)
}
