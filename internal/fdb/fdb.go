package fdb

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"

	"github.com/netinspect/asicview/internal/asic"
	"github.com/netinspect/asicview/internal/refmap"
	"github.com/netinspect/asicview/pkg/log"
	"github.com/netinspect/asicview/pkg/store"
	"github.com/netinspect/asicview/pkg/utils"
)

const (
	fdbPattern = "ASIC_STATE:SAI_OBJECT_TYPE_FDB_ENTRY:*"

	staticMarker = "SAI_FDB_ENTRY_TYPE_STATIC"
)

// EntryType .
type EntryType string

const (
	// EntryTypeDynamic .
	EntryTypeDynamic EntryType = "Dynamic"
	// EntryTypeStatic .
	EntryTypeStatic EntryType = "Static"
)

// Entry is one learned MAC address. Value object: constructed once,
// then only filtered, sorted and displayed.
type Entry struct {
	Vlan int
	Mac  string
	Port string
	Type EntryType
}

// fdbKey is the attribute object embedded in the record key suffix.
type fdbKey struct {
	Mac  string `json:"mac"`
	Vlan string `json:"vlan"`
	Bvid string `json:"bvid"`
}

type fdbAttrs struct {
	BridgePort string `mapstructure:"SAI_FDB_ENTRY_ATTR_BRIDGE_PORT_ID"`
	Type       string `mapstructure:"SAI_FDB_ENTRY_ATTR_TYPE"`
}

// Scan enumerates one namespace's FDB records and resolves each into an
// Entry. Unresolvable records are dropped, never emitted partially.
func Scan(ctx context.Context, st store.Store) ([]Entry, error) {
	maps, err := refmap.Build(ctx, st)
	if err != nil {
		return nil, err
	}
	if maps.Empty() {
		// Nothing can be learned without bridge ports.
		return nil, nil
	}

	resolver := NewVlanResolver(st)

	keys, err := st.ListKeys(ctx, fdbPattern)
	if err != nil {
		return nil, errors.Wrap(err, "list fdb entries")
	}

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		entry, ok, err := resolveRecord(ctx, st, maps, resolver, key)
		if err != nil {
			return nil, err
		}
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func resolveRecord(ctx context.Context, st store.Store, maps *refmap.Maps, resolver *VlanResolver, key string) (Entry, bool, error) {
	var fk fdbKey
	if err := json.Unmarshal([]byte(utils.KeyObjectID(key)), &fk); err != nil {
		log.Debugf("skip malformed fdb key %s: %v", key, err)
		return Entry{}, false, nil
	}

	attrs, err := st.GetAttributes(ctx, key)
	if err != nil {
		return Entry{}, false, errors.Wrapf(err, "fetch %s", key)
	}

	var fa fdbAttrs
	if err := mapstructure.Decode(attrs, &fa); err != nil {
		return Entry{}, false, errors.Wrapf(err, "decode %s", key)
	}
	if len(fa.BridgePort) == 0 {
		log.Debugf("skip fdb entry %s: no bridge port attribute", key)
		return Entry{}, false, nil
	}

	// Required-reference chain: bridge port -> port oid -> interface
	// name. A missing bridge-port mapping is expected during state
	// churn; a missing interface name only degrades the display.
	portOid, ok := maps.BridgePorts[fa.BridgePort]
	if !ok {
		log.Debugf("skip fdb entry %s: bridge port %s not enumerable", key, fa.BridgePort)
		return Entry{}, false, nil
	}
	port, ok := maps.Interfaces[portOid]
	if !ok {
		port = portOid
	}

	vlan, ok := resolveVlan(ctx, resolver, fk)
	if !ok {
		return Entry{}, false, nil
	}

	typ := EntryTypeDynamic
	if fa.Type == staticMarker {
		typ = EntryTypeStatic
	}

	return Entry{Vlan: vlan, Mac: fk.Mac, Port: port, Type: typ}, true, nil
}

// resolveVlan: an explicit vlan field wins; otherwise the bridge-domain
// resolver decides. Records with neither are dropped.
func resolveVlan(ctx context.Context, resolver *VlanResolver, fk fdbKey) (int, bool) {
	if len(fk.Vlan) > 0 {
		vlan, err := strconv.Atoi(fk.Vlan)
		if err != nil {
			log.Debugf("skip fdb entry with bad vlan %q", fk.Vlan)
			return 0, false
		}
		return vlan, true
	}

	if len(fk.Bvid) > 0 {
		res := resolver.Resolve(ctx, fk.Bvid)
		if res.Outcome == VlanNone {
			return 0, false
		}
		return res.Vlan, true
	}

	return 0, false
}

// ScanAll runs the scan once per namespace and concatenates results.
// Any namespace failure is fatal: a partial FDB table is misleading.
func ScanAll(ctx context.Context, nss []asic.Namespace) ([]Entry, error) {
	var all []Entry
	for _, ns := range nss {
		entries, err := scanNamespace(ctx, ns)
		if err != nil {
			return nil, errors.Wrapf(err, "namespace %q", ns.Name)
		}
		all = append(all, entries...)
	}
	return all, nil
}

func scanNamespace(ctx context.Context, ns asic.Namespace) ([]Entry, error) {
	st, err := ns.ConnectASIC(ctx)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	return Scan(ctx, st)
}
