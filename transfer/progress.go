package transfer

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// uploadBody is what manager.Uploader needs to size a body and read its parts concurrently.
type uploadBody interface {
	io.Reader
	io.ReaderAt
	io.Seeker
}

// progressReader reports bytes read from an upload body. Reads are counted up to total, since
// the SDK may read a part more than once to sign or retry it.
type progressReader struct {
	r     uploadBody
	total int64
	read  atomic.Int64
	h     *Handle
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.add(n)
	return n, err
}

func (p *progressReader) ReadAt(b []byte, off int64) (int, error) {
	n, err := p.r.ReadAt(b, off)
	p.add(n)
	return n, err
}

func (p *progressReader) Seek(offset int64, whence int) (int64, error) {
	return p.r.Seek(offset, whence)
}

func (p *progressReader) add(n int) {
	if n <= 0 {
		return
	}
	read := p.read.Add(int64(n))
	if p.total > 0 && read > p.total {
		read = p.total
	}
	p.h.Notify(ProgressNotification(read, p.total))
}

// progressWriterAt reports bytes written by a download. Parts may arrive out of order. total is
// learned from the first GetObject response.
type progressWriterAt struct {
	w       io.WriterAt
	total   atomic.Int64
	written atomic.Int64
	h       *Handle
}

func (p *progressWriterAt) WriteAt(b []byte, off int64) (int, error) {
	n, err := p.w.WriteAt(b, off)
	if n > 0 {
		p.h.Notify(ProgressNotification(p.written.Add(int64(n)), p.total.Load()))
	}
	return n, err
}

// sizingClient records the object size on w from the first successful GetObject.
type sizingClient struct {
	Client
	w *progressWriterAt
}

func (c *sizingClient) GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	out, err := c.Client.GetObject(ctx, in, optFns...)
	if err == nil && out != nil {
		if size := objectSize(out); size > 0 {
			c.w.total.CompareAndSwap(0, size)
		}
	}
	return out, err
}

// objectSize reads the full object size from a ranged response ("bytes 0-99/1000"), falling back
// to ContentLength for a whole-object response.
func objectSize(out *s3.GetObjectOutput) int64 {
	if cr := aws.ToString(out.ContentRange); cr != "" {
		if i := strings.LastIndex(cr, "/"); i >= 0 {
			if size, err := strconv.ParseInt(cr[i+1:], 10, 64); err == nil {
				return size
			}
		}
		return 0
	}
	return aws.ToInt64(out.ContentLength)
}
