// buffer_pool.go provides pooled, zeroizing byte buffers for secret key
// material and ciphertext so that hot paths (composite sign/verify, KEMRI
// encapsulate/decapsulate over many recipients) don't allocate and zero a
// fresh slice on every call. Every buffer returned to the pool is zeroed
// first, so pooling secrets never leaks previous contents to the next
// caller.
package crypto

import "sync"

// Size classes. secretBufferSize covers the largest fixed-size secret this
// module handles (an ML-KEM-1024 shared-secret-derivation intermediate);
// ciphertext classes follow the teacher's original small/medium/large split.
const (
	secretBufferSize       = 64
	smallCryptoBufferSize  = 1024
	mediumCryptoBufferSize = 16 * 1024
	largeCryptoBufferSize  = 64 * 1024
)

// BufferPool provides pooled byte slices for cryptographic operations.
type BufferPool struct {
	secret sync.Pool
	small  sync.Pool
	medium sync.Pool
	large  sync.Pool
}

// globalCryptoPool is the default crypto buffer pool instance.
var globalCryptoPool = NewBufferPool()

// NewBufferPool creates a new crypto buffer pool.
func NewBufferPool() *BufferPool {
	return &BufferPool{
		secret: sync.Pool{New: func() any { buf := make([]byte, secretBufferSize); return &buf }},
		small:  sync.Pool{New: func() any { buf := make([]byte, smallCryptoBufferSize); return &buf }},
		medium: sync.Pool{New: func() any { buf := make([]byte, mediumCryptoBufferSize); return &buf }},
		large:  sync.Pool{New: func() any { buf := make([]byte, largeCryptoBufferSize); return &buf }},
	}
}

// GetSecret returns a zeroed secret-sized buffer from the pool.
func (p *BufferPool) GetSecret() []byte {
	bufPtr := p.secret.Get().(*[]byte)
	buf := *bufPtr
	Zeroize(buf)
	return buf
}

// PutSecret zeroizes buf and returns it to the pool. Buffers of a size the
// pool doesn't track are zeroized but not retained.
func (p *BufferPool) PutSecret(buf []byte) {
	if buf == nil {
		return
	}
	Zeroize(buf)
	if cap(buf) != secretBufferSize {
		return
	}
	buf = buf[:cap(buf)]
	p.secret.Put(&buf)
}

// GetCiphertext returns a buffer of at least the requested size, or a
// directly allocated slice if size exceeds the largest pooled class.
func (p *BufferPool) GetCiphertext(size int) []byte {
	if size <= 0 {
		return nil
	}

	var bufPtr *[]byte
	switch {
	case size <= smallCryptoBufferSize:
		bufPtr = p.small.Get().(*[]byte)
	case size <= mediumCryptoBufferSize:
		bufPtr = p.medium.Get().(*[]byte)
	case size <= largeCryptoBufferSize:
		bufPtr = p.large.Get().(*[]byte)
	default:
		return make([]byte, size)
	}

	return (*bufPtr)[:size]
}

// PutCiphertext zeroizes buf and returns it to the pool.
func (p *BufferPool) PutCiphertext(buf []byte) {
	if buf == nil || cap(buf) == 0 {
		return
	}

	buf = buf[:cap(buf)]
	Zeroize(buf)
	bufPtr := &buf

	switch cap(buf) {
	case smallCryptoBufferSize:
		p.small.Put(bufPtr)
	case mediumCryptoBufferSize:
		p.medium.Put(bufPtr)
	case largeCryptoBufferSize:
		p.large.Put(bufPtr)
	}
}

// GetSecretBuffer returns a secret-sized buffer from the global pool.
func GetSecretBuffer() []byte { return globalCryptoPool.GetSecret() }

// PutSecretBuffer zeroizes and returns a secret buffer to the global pool.
func PutSecretBuffer(buf []byte) { globalCryptoPool.PutSecret(buf) }

// GetCryptoBuffer returns a buffer from the global crypto pool.
func GetCryptoBuffer(size int) []byte { return globalCryptoPool.GetCiphertext(size) }

// PutCryptoBuffer returns a buffer to the global crypto pool.
func PutCryptoBuffer(buf []byte) { globalCryptoPool.PutCiphertext(buf) }
