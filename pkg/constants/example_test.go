package constants_test

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/civicdata/goldenrecord/pkg/constants"
)

// Example demonstrates using constants for common operations
func Example() {
	// Create directory with standard permissions
	dir := filepath.Join(".", "data")
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		panic(err)
	}

	// Create file with standard permissions
	file := filepath.Join(dir, "canonical.csv")
	data := []byte("po_number,description\n")
	if err := os.WriteFile(file, data, constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Printf("Created dir with %o permissions\n", constants.DirPermissions)
	fmt.Printf("Created file with %o permissions\n", constants.FilePermissions)
	// Output:
	// Created dir with 755 permissions
	// Created file with 644 permissions
}

// Example_timeouts demonstrates timeout constants
func Example_timeouts() {
	// HTTP client bounded by the oracle budget
	client := &http.Client{
		Timeout: constants.OracleTimeout,
	}
	fmt.Printf("Oracle timeout: %v\n", client.Timeout)

	// Context with operation timeout
	ctx, cancel := context.WithTimeout(
		context.Background(),
		constants.DefaultTimeout,
	)
	defer cancel()

	// Simulated operation
	select {
	case <-time.After(100 * time.Millisecond):
		fmt.Println("Operation completed")
	case <-ctx.Done():
		fmt.Println("Operation timed out")
	}

	// Output:
	// Oracle timeout: 30s
	// Operation completed
}

// Example_dateFormats shows the date formats the pipeline relies on
func Example_dateFormats() {
	sent, _ := time.Parse(constants.TimeFormatSentDate, "01/15/2024")
	fmt.Printf("Sent date: %s\n", sent.Format(constants.TimeFormatSnapshot))

	// Output:
	// Sent date: 2024-01-15
}

// Example_runTimeouts shows different context timeout scenarios
func Example_runTimeouts() {
	// One full consolidation run
	_, runCancel := context.WithTimeout(
		context.Background(),
		constants.RunTimeout,
	)
	defer runCancel()

	// A single oracle call
	_, oracleCancel := context.WithTimeout(
		context.Background(),
		constants.OracleTimeout,
	)
	defer oracleCancel()

	fmt.Printf("Run timeout: %v\n", constants.RunTimeout)
	fmt.Printf("Oracle timeout: %v\n", constants.OracleTimeout)

	// Output:
	// Run timeout: 5m0s
	// Oracle timeout: 30s
}
