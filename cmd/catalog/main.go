// catalog imprime el catálogo filtrado en la terminal.
//
// Uso: catalog list --user Anna --category Grocery --query br --sort product --order asc
package main

import (
	"os"

	"github.com/jhoicas/catalogo-productos/internal/interfaces/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
