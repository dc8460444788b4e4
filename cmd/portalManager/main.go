package main

import (
	"log"

	"github.com/jobportal/portalManager"
)

// main starts the admin console. Configuration is read from
// PORTAL_MANAGER_CONFIG and PORTAL_MANAGER_* environment variables.
func main() {
	if err := portalManager.AdminServer(); err != nil {
		log.Fatalf("Admin server failed: %v", err)
	}
}
