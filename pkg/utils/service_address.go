package utils

import (
	"fmt"
	"net"
	"os"
)

// ServiceAddress identifies the answering instance as "hostname/ip:port".
func ServiceAddress(port string) string {
	return fmt.Sprintf("%s/%s:%s", findHostname(), findIPAddress(), port)
}

func findHostname() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return "unknown host name"
	}
	return hostname
}

func findIPAddress() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown IP address"
	}

	addrs, err := net.LookupHost(hostname)
	if err != nil || len(addrs) == 0 {
		return "unknown IP address"
	}

	for _, addr := range addrs {
		if ip := net.ParseIP(addr); ip != nil && ip.To4() != nil {
			return addr
		}
	}
	return addrs[0]
}
