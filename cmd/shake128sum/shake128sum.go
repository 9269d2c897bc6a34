// shake128sum is a very basic checksum command
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/coruus/go-shake128/shake128"
)

var digestLen int

func init() {
	flag.IntVar(&digestLen, "n", 32, "digest length in bytes")
}

func sumReader(r io.Reader) (checksum string, err error) {
	sp := shake128.New()
	if _, err = io.Copy(sp, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(sp.Digest(digestLen)), nil
}

func sumFile(filename string) (checksum string, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return sumReader(f)
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		// Read from stdin
		checksum, err := sumReader(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "shake128sum: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(checksum)
		return
	}
	status := 0
	for _, filename := range flag.Args() {
		checksum, err := sumFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "shake128sum: %s on %s\n", err, filename)
			status = 1
			continue
		}
		fmt.Printf("SHAKE128(%s) = %s\n", filename, checksum)
	}
	os.Exit(status)
}
