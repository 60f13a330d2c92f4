// Command underbar applies go-underbar collection utilities to JSON documents.
//
//	underbar uniq '[1,2,2,3,1]'                 # [1,2,3]
//	echo '[1,[2,[3]]]' | underbar flatten      # [1,2,3]
//	underbar extend '{"a":1}' '{"b":2}'         # {"a":1,"b":2}
package main

import (
	"os"

	"github.com/hasbyte1/go-underbar/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
