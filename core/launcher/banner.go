package launcher

import (
	"fmt"
	"io"
	"net"
)

const rule = "=================================================="

// for testing
var interfaceAddrs = net.InterfaceAddrs

var checklist = []string{
	"Open the site in a browser",
	"Try selecting tiles for a hand",
	"Run an analysis",
	"Check the responsive layout (shrink the window)",
	"Test on a phone (optional)",
}

func printBanner(w io.Writer, title, root string, port int) {
	fmt.Fprintf(w, "🌐 %s - local preview server\n", title)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "📁 Serving directory: %s\n", root)
	fmt.Fprintf(w, "🌍 Site URL:          http://localhost:%d\n", port)
	fmt.Fprintf(w, "📱 Phone testing:     http://%s:%d\n", lanHost(), port)
	fmt.Fprintln(w, rule)
}

func printMissing(w io.Writer, title string, missing []string) {
	fmt.Fprintf(w, "❌ %s cannot start, missing files:\n", title)
	for _, file := range missing {
		fmt.Fprintf(w, "   - %s\n", file)
	}
	fmt.Fprintln(w, "\nMake sure all files exist before running the server.")
}

func printRunning(w io.Writer, port int, url string) {
	fmt.Fprintf(w, "\n🚀 Server started on port %d\n", port)
	fmt.Fprintln(w, "\n📋 Test checklist:")
	for _, item := range checklist {
		fmt.Fprintf(w, "  □ %s\n", item)
	}
	fmt.Fprintln(w, "\n🌍 Opening your browser...")
	fmt.Fprintln(w, "   If it does not open, visit:")
	fmt.Fprintf(w, "   %s\n", url)
}

func printBindError(w io.Writer, port int, inUse bool, err error) {
	if inUse {
		fmt.Fprintf(w, "❌ Port %d is already in use\n", port)
		fmt.Fprintln(w, "   Close the program using it, or set SERVER_PORT to another port.")
		return
	}
	fmt.Fprintf(w, "❌ Failed to start the server: %v\n", err)
}

// lanHost returns the first non-loopback IPv4 address, or a placeholder.
func lanHost() string {
	addrs, err := interfaceAddrs()
	if err != nil {
		return "<your-ip>"
	}
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() || ipnet.IP.IsLinkLocalUnicast() {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}
	return "<your-ip>"
}
