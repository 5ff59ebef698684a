package ui

import "fmt"

func PrintOK(format string, args ...any) {
	fmt.Printf(ColorGreen+IconCheckmark+" "+format+ColorReset+"\n", args...)
}

func PrintErr(format string, args ...any) {
	fmt.Printf(ColorRed+IconCross+" "+format+ColorReset+"\n", args...)
}

func PrintInfo(format string, args ...any) {
	fmt.Printf(ColorCyan+format+ColorReset+"\n", args...)
}
