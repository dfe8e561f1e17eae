package refmap

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/netinspect/asicview/pkg/store"
	"github.com/netinspect/asicview/pkg/utils"
)

const (
	hostifPattern     = "ASIC_STATE:SAI_OBJECT_TYPE_HOSTIF:*"
	bridgePortPattern = "ASIC_STATE:SAI_OBJECT_TYPE_BRIDGE_PORT:*"

	attrHostifObjID  = "SAI_HOSTIF_ATTR_OBJ_ID"
	attrHostifName   = "SAI_HOSTIF_ATTR_NAME"
	attrBridgePortID = "SAI_BRIDGE_PORT_ATTR_PORT_ID"
)

// Maps holds the per-namespace reference maps, built once at scan start
// and read-only afterwards.
type Maps struct {
	// Interfaces maps a port object id to its interface name.
	Interfaces map[string]string
	// BridgePorts maps a bridge-port object id to its port object id.
	BridgePorts map[string]string
}

// Empty reports whether the namespace exposes no bridge ports, in which
// case FDB scanning short-circuits with zero entries.
func (m *Maps) Empty() bool {
	return len(m.BridgePorts) == 0
}

// Build bulk-scans the namespace's hostif and bridge-port objects.
func Build(ctx context.Context, st store.Store) (*Maps, error) {
	m := &Maps{
		Interfaces:  map[string]string{},
		BridgePorts: map[string]string{},
	}

	keys, err := st.ListKeys(ctx, hostifPattern)
	if err != nil {
		return nil, errors.Wrap(err, "list hostif objects")
	}
	for _, key := range keys {
		attrs, err := st.GetAttributes(ctx, key)
		if err != nil {
			return nil, errors.Wrapf(err, "fetch %s", key)
		}
		oid, name := attrs[attrHostifObjID], attrs[attrHostifName]
		if len(oid) > 0 && len(name) > 0 {
			m.Interfaces[oid] = name
		}
	}

	keys, err = st.ListKeys(ctx, bridgePortPattern)
	if err != nil {
		return nil, errors.Wrap(err, "list bridge ports")
	}
	for _, key := range keys {
		attrs, err := st.GetAttributes(ctx, key)
		if err != nil {
			return nil, errors.Wrapf(err, "fetch %s", key)
		}
		if portOid := attrs[attrBridgePortID]; len(portOid) > 0 {
			m.BridgePorts[utils.KeyObjectID(key)] = portOid
		}
	}

	return m, nil
}
