// Package publisher writes rendered output to the publish dir.
package publisher

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	bp "github.com/sunwei/aurum-atelier/bufferpool"
	"github.com/sunwei/aurum-atelier/config"
	"github.com/sunwei/aurum-atelier/helpers"
	"github.com/sunwei/aurum-atelier/minifiers"
	"github.com/sunwei/aurum-atelier/output"
	"github.com/sunwei/aurum-atelier/transform"
	"github.com/sunwei/aurum-atelier/transform/urlreplacers"
)

// Publisher publishes a result file.
type Publisher interface {
	Publish(d Descriptor) error
}

// Descriptor describes the needed publishing chain for an item.
type Descriptor struct {
	// The content to publish.
	Src io.Reader

	// The OutputFormat of the this content.
	OutputFormat output.Format

	// Where to publish this content. This is a filesystem-relative path.
	TargetPath string

	// If set, will replace all root relative URLs with this one.
	AbsURLPath string

	// Enable to minify the output using the OutputFormat defined above to
	// pick the correct minifier configuration.
	Minify bool
}

// NewDestinationPublisher creates a new DestinationPublisher writing to
// fs, usually the publish dir.
func NewDestinationPublisher(fs afero.Fs, outputFormats output.Formats, cfg config.Provider) (pub DestinationPublisher, err error) {
	pub = DestinationPublisher{fs: fs}
	pub.min, err = minifiers.New(outputFormats, cfg)
	return
}

// DestinationPublisher is the default and currently only publisher. This
// publisher prepares and publishes an item to the defined destination,
// e.g. /dist.
type DestinationPublisher struct {
	fs  afero.Fs
	min minifiers.Client
}

// MinifyOutput reports whether output should be minified per config.
func (p DestinationPublisher) MinifyOutput() bool {
	return p.min.MinifyOutput
}

// Publish applies any relevant transformations and writes the file
// to its destination, e.g. /dist.
func (p DestinationPublisher) Publish(d Descriptor) error {
	if d.TargetPath == "" {
		return errors.New("publish: must provide a TargetPath")
	}

	src := d.Src

	transformers := p.createTransformerChain(d)

	if len(transformers) != 0 {
		b := bp.GetBuffer()
		defer bp.PutBuffer(b)

		if err := transformers.Apply(b, d.Src); err != nil {
			return fmt.Errorf("failed to process %q: %w", d.TargetPath, err)
		}

		// This is now what we write to disk.
		src = b
	}

	f, err := helpers.OpenFileForWriting(p.fs, d.TargetPath)
	if err != nil {
		return err
	}

	_, err = io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", d.TargetPath, err)
	}

	return nil
}

func (p DestinationPublisher) createTransformerChain(f Descriptor) transform.Chain {
	transformers := transform.NewEmpty()

	isHTML := f.OutputFormat.IsHTML

	if isHTML && f.AbsURLPath != "" {
		transformers = append(transformers, urlreplacers.NewAbsURLTransformer(f.AbsURLPath))
	}

	if f.Minify && !f.OutputFormat.IsPlainText {
		if minifyTransformer := p.min.Transformer(f.OutputFormat.MediaType); minifyTransformer != nil {
			transformers = append(transformers, minifyTransformer)
		}
	}

	return transformers
}
