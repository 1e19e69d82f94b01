// Package icon holds the tray icon.
package icon

// Main is a 16x16 32-bit ICO.
var Main = []byte{
	0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x10, 0x10, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00, 0x68, 0x04,
	0x00, 0x00, 0x16, 0x00, 0x00, 0x00, 0x28, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x20, 0x00,
	0x00, 0x00, 0x01, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x04, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78,
	0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0xd0, 0x78, 0x1e, 0xff, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}
