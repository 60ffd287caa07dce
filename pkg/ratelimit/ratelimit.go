// Package ratelimit — brute-force saldırılarına karşı IP bazlı login
// rate limiting.
//
// Tasarım:
// - Her IP için sliding window ile deneme sayısı takip edilir.
// - Window içinde maxAttempts aşılırsa istek reddedilir → caller 429 döner.
// - Başarılı login sonrası Reset() sayacı temizler — meşru kullanıcı bloke olmaz.
// - Background goroutine süresi dolmuş bucket'ları siler (memory leak engeli).
//
// Neden in-memory?
// Tek instance deploy'da Redis gibi harici bir bağımlılığa gerek yok;
// sync.Mutex korumalı map yeterli.
//
// pkg/ratelimit hiçbir proje içi pakete bağımlı değildir (leaf dependency) —
// handlers ↔ middleware arasında import cycle oluşmaz.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// bucket, bir IP için deneme sayacı ve window başlangıcını tutar.
type bucket struct {
	count       int
	windowStart time.Time
}

// Limiter, IP bazlı sliding window rate limiter.
type Limiter struct {
	mu          sync.Mutex
	buckets     map[string]*bucket
	maxAttempts int
	window      time.Duration
	stop        chan struct{}
}

// New, yeni bir Limiter oluşturur ve temizleme goroutine'ini başlatır.
//
// maxAttempts: window başına izin verilen deneme (ör: 5).
// window: pencere süresi (ör: 2*time.Minute).
func New(maxAttempts int, window time.Duration) *Limiter {
	l := &Limiter{
		buckets:     make(map[string]*bucket),
		maxAttempts: maxAttempts,
		window:      window,
		stop:        make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow, verilen IP'nin yeni bir denemeye izni olup olmadığını döner.
// Her çağrı sayacı artırır; false dönerse caller 429 dönmelidir.
func (l *Limiter) Allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ip]
	if !ok || now.Sub(b.windowStart) > l.window {
		// İlk deneme veya pencere dolmuş — yeni pencere başlat
		l.buckets[ip] = &bucket{count: 1, windowStart: now}
		return true
	}

	b.count++
	return b.count <= l.maxAttempts
}

// Reset, başarılı login sonrası IP sayacını temizler.
func (l *Limiter) Reset(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, ip)
}

// RetryAfterSeconds, limit aşıldığında kalan bekleme süresini saniye olarak
// döner — HTTP Retry-After header değeri.
func (l *Limiter) RetryAfterSeconds(ip string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ip]
	if !ok {
		return 0
	}

	remaining := l.window - time.Since(b.windowStart)
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1 // +1 yuvarlama — client tam süreyi bekler
}

// Stop, temizleme goroutine'ini durdurur.
func (l *Limiter) Stop() {
	close(l.stop)
}

// cleanupLoop, her dakika süresi dolmuş bucket'ları siler.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			l.mu.Lock()
			for ip, b := range l.buckets {
				if now.Sub(b.windowStart) > l.window {
					delete(l.buckets, ip)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}

// ExtractIP, HTTP request'ten client IP adresini çıkarır.
//
// Öncelik: X-Forwarded-For (ilk IP) → X-Real-IP → RemoteAddr.
// Reverse proxy arkasında RemoteAddr her zaman proxy'nin adresidir;
// gerçek client IP'si forward header'larındadır.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' {
				return xff[:i]
			}
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
