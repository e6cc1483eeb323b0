// Package sysinfo registers built-in host attributes on a device.
//
// Memory attributes are read from /proc/meminfo on every read and are
// reported in bytes:
//
//	memory.total      long  READ
//	memory.available  long  READ
//	memory.used       long  READ  (total - available)
//	memory.free       long  READ
//	hostname          string READ
package sysinfo
