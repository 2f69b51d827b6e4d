package main

import (
	"fmt"
	"net/http"

	buddyhttp "github.com/LukasGLars/construction-buddy/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := buddyhttp.NewInvoiceServer(deps.Items)

	fmt.Fprintf(deps.Stdout, "Invoice form listening on %s\n", c.Addr)
	return http.ListenAndServe(c.Addr, server.Handler())
}
