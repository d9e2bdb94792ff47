// Package notifications implements the in-process notification bus.
//
// Events are fanned out to per-role broadcast buffers and per-user personal
// buffers held in memory. Consumers poll with a since-cursor; there is no
// push channel and no persistence, so events are lost on restart and
// expire after a retention window.
package notifications
