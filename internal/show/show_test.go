package show

import (
	"bytes"
	"strings"
	"testing"

	"github.com/netinspect/asicview/internal/fdb"
	"github.com/netinspect/asicview/internal/voq"
	"github.com/netinspect/asicview/pkg/test/assert"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, []string{"Vlan", "MacAddress", "Port", "Type"}, [][]string{
		{"1000", "AA", "P1", "Dynamic"},
	})

	assert.Equal(t, strings.Join([]string{
		"No.  Vlan  MacAddress  Port  Type",
		"---  ----  ----------  ----  -------",
		"1    1000  AA          P1    Dynamic",
		"Total number of entries 1",
		"",
	}, "\n"), buf.String())
}

func TestRenderZeroRows(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, []string{"Vlan", "MacAddress", "Port", "Type"}, nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "No.  Vlan  MacAddress  Port  Type", lines[0])
	assert.Equal(t, "Total number of entries 0", lines[2])
}

func sampleEntries() []fdb.Entry {
	return []fdb.Entry{
		{Vlan: 1000, Mac: "52:54:00:25:06:E9", Port: "Ethernet4", Type: fdb.EntryTypeDynamic},
		{Vlan: 1000, Mac: "52:54:00:25:06:EA", Port: "Ethernet8", Type: fdb.EntryTypeDynamic},
		{Vlan: 1000, Mac: "52:54:00:25:06:EB", Port: "Ethernet20", Type: fdb.EntryTypeDynamic},
		{Vlan: 1000, Mac: "52:54:00:25:06:EC", Port: "Ethernet40", Type: fdb.EntryTypeStatic},
	}
}

func TestFDBNoFilter(t *testing.T) {
	var buf bytes.Buffer
	FDB(&buf, sampleEntries(), FDBOptions{})

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 7)
	assert.Equal(t, "Total number of entries 4", lines[6])

	// Equal VLANs keep scan order.
	assert.True(t, strings.Contains(lines[2], "Ethernet4"))
	assert.True(t, strings.Contains(lines[3], "Ethernet8"))
	assert.True(t, strings.Contains(lines[4], "Ethernet20"))
	assert.True(t, strings.Contains(lines[5], "Ethernet40"))
	assert.True(t, strings.HasPrefix(lines[5], "4"))
}

func TestFDBPortFilter(t *testing.T) {
	var buf bytes.Buffer
	FDB(&buf, sampleEntries(), FDBOptions{Port: "Ethernet4"})

	out := buf.String()
	assert.True(t, strings.Contains(out, "Total number of entries 1"))
	assert.True(t, strings.Contains(out, "52:54:00:25:06:E9"))
	assert.False(t, strings.Contains(out, "Ethernet8"))
}

func TestFDBVlanNotInList(t *testing.T) {
	var buf bytes.Buffer
	FDB(&buf, sampleEntries(), FDBOptions{Vlan: "1001"})
	assert.Equal(t, "1001 is not in list\n", buf.String())
}

func TestFDBVlanCommaList(t *testing.T) {
	entries := append(sampleEntries(), fdb.Entry{Vlan: 17, Mac: "AA", Port: "Ethernet1", Type: fdb.EntryTypeDynamic})

	var buf bytes.Buffer
	FDB(&buf, entries, FDBOptions{Vlan: "17,1000"})
	assert.True(t, strings.Contains(buf.String(), "Total number of entries 5"))

	// Numeric ascending: vlan 17 sorts first.
	lines := strings.Split(buf.String(), "\n")
	assert.True(t, strings.Contains(lines[2], "Ethernet1"))
}

func TestSystemPortsNaturalSort(t *testing.T) {
	ports := []voq.SystemPort{
		{Name: "Linecard1|Asic0|Ethernet10", PortID: "3", SwitchID: "0", Core: "0", CorePort: "1", Speed: "100G"},
		{Name: "Linecard1|Asic0|Ethernet2", PortID: "1", SwitchID: "0", Core: "0", CorePort: "2", Speed: "100G"},
		{Name: "Linecard1|Asic0|Ethernet1", PortID: "2", SwitchID: "0", Core: "1", CorePort: "3", Speed: "100G"},
	}

	var buf bytes.Buffer
	SystemPorts(&buf, ports, VOQOptions{})

	lines := strings.Split(buf.String(), "\n")
	assert.True(t, strings.Contains(lines[2], "Ethernet1 "))
	assert.True(t, strings.Contains(lines[3], "Ethernet2"))
	assert.True(t, strings.Contains(lines[4], "Ethernet10"))
	assert.True(t, strings.Contains(lines[5], "Total number of entries 3"))
}

func TestSystemPortsLinecardFilter(t *testing.T) {
	ports := []voq.SystemPort{
		{Name: "Linecard1|Asic0|Ethernet1"},
		{Name: "Linecard2|Asic0|Ethernet1"},
	}

	var buf bytes.Buffer
	SystemPorts(&buf, ports, VOQOptions{Linecard: "Linecard2"})
	assert.True(t, strings.Contains(buf.String(), "Total number of entries 1"))
	assert.True(t, strings.Contains(buf.String(), "Linecard2"))
}

func TestSystemNeighborsInvalidIP(t *testing.T) {
	var buf bytes.Buffer
	SystemNeighbors(&buf, []voq.SystemNeighbor{{InterfaceKey: "a", NeighborIP: "10.0.0.1"}}, VOQOptions{IP: "10.0.0"})
	assert.Equal(t, "Invalid ip address 10.0.0\n", buf.String())
}

func TestSystemNeighborsFilters(t *testing.T) {
	neighbors := []voq.SystemNeighbor{
		{Namespace: "asic0", InterfaceKey: "Linecard1|Asic0|Ethernet4", NeighborIP: "10.0.0.1", Mac: "aa", EncapIndex: "1"},
		{Namespace: "asic1", InterfaceKey: "Linecard1|Asic1|Ethernet8", NeighborIP: "10.0.1.1", Mac: "bb", EncapIndex: "2"},
	}

	var buf bytes.Buffer
	SystemNeighbors(&buf, neighbors, VOQOptions{IP: "10.0.0.1"})
	assert.True(t, strings.Contains(buf.String(), "Total number of entries 1"))
	assert.True(t, strings.Contains(buf.String(), "Ethernet4"))

	buf.Reset()
	SystemNeighbors(&buf, neighbors, VOQOptions{Namespace: "asic1"})
	assert.True(t, strings.Contains(buf.String(), "Total number of entries 1"))
	assert.True(t, strings.Contains(buf.String(), "Ethernet8"))

	buf.Reset()
	SystemNeighbors(&buf, neighbors, VOQOptions{})
	assert.True(t, strings.Contains(buf.String(), "Total number of entries 2"))
}

func TestSystemLagsFilter(t *testing.T) {
	lags := []voq.SystemLag{
		{LagKey: "Linecard2|Asic0|PortChannel1020", LagID: "4", SwitchID: "6", Members: "Ethernet2, Ethernet10"},
		{LagKey: "Linecard4|Asic0|PortChannel1030", LagID: "5", SwitchID: "8", Members: ""},
	}

	var buf bytes.Buffer
	SystemLags(&buf, lags, VOQOptions{Lag: "PortChannel1020"})
	out := buf.String()
	assert.True(t, strings.Contains(out, "Total number of entries 1"))
	assert.True(t, strings.Contains(out, "Ethernet2, Ethernet10"))
}
