package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		errColor.Fprintf(os.Stderr, "snfilt: %v\n", err)
		os.Exit(1)
	}
}
