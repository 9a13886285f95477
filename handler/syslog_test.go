//go:build !windows && !plan9

package handler

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/loglane/loglane/core"
)

func TestSyslogHandler_Delivery(t *testing.T) {
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("ListenPacket() error = %v", err)
	}
	defer conn.Close()

	h, err := NewSyslogHandler(SyslogConfig{
		Address: conn.LocalAddr().String(),
		Tag:     "loglane_test",
	})
	if err != nil {
		t.Fatalf("NewSyslogHandler() error = %v", err)
	}
	defer h.Close()

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Level = core.ErrorLevel
	entry.Message = "syslog bound"

	if err := h.Handle(entry); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	buf := make([]byte, 2048)
	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatal(err)
	}
	n, _, err := conn.ReadFrom(buf)
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}

	msg := string(buf[:n])
	if !strings.Contains(msg, "syslog bound") {
		t.Errorf("Expected message in syslog packet, got: %s", msg)
	}
	if !strings.Contains(msg, "loglane_test") {
		t.Errorf("Expected tag in syslog packet, got: %s", msg)
	}
}

func TestSyslogHandler_DialFailure(t *testing.T) {
	_, err := NewSyslogHandler(SyslogConfig{
		Address: "127.0.0.1:1",
		Network: "tcp",
	})
	if err == nil {
		t.Error("Expected dial error for unreachable TCP collector")
	}
}
