package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/oakwood-commons/scenepath/pkg/loader"
	"github.com/oakwood-commons/scenepath/pkg/scene"
)

// errNoInput is returned when neither a file argument nor piped stdin is
// available.
var errNoInput = errors.New("no input provided: pass a file argument or pipe a document to stdin")

// loadDocument reads and parses the document from the file argument or, when
// absent, from piped stdin.
func loadDocument(args []string) (any, error) {
	if len(args) > 0 {
		doc, err := loader.LoadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", args[0], err)
		}
		return doc, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errNoInput
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return loader.LoadRootBytes(data)
}

// loadRootNode loads the document and decodes it into an instance hierarchy
// when --scene is set or the document has scene shape. Otherwise the parsed
// document is returned for mapping navigation.
func loadRootNode(args []string) (any, error) {
	doc, err := loadDocument(args)
	if err != nil {
		return nil, err
	}
	if sceneMode || scene.IsSceneDocument(doc) {
		in, err := scene.Decode(doc)
		if err != nil {
			if sceneMode {
				return nil, err
			}
			// Shape detection was a false positive; fall back to
			// mapping navigation.
			return doc, nil
		}
		return in, nil
	}
	return doc, nil
}
