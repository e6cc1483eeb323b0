// Package discovery implements mDNS/DNS-SD discovery of MDCS nodes.
//
// A node advertises one service instance of type _mdcs-node._tcp on the
// port its plugin listener is bound to. Hosts browse for that service
// when no node address is configured and dial the first node found.
//
// # TXT Records
//
// The node's TXT record carries:
//   - name: the node name (required)
//   - ver: the protocol version the node speaks (required)
//
// Instance names are the node name, truncated to the DNS label limit.
package discovery
