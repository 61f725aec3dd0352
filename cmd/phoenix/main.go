// Phoenix Lab: терминальный клиент AI рерайта статей.
//
// Без подкоманды запускает TUI форму. Подкоманды channels, rewrite,
// send и health работают с тем же backend без интерфейса.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
