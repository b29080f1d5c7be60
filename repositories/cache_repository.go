package repositories

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
	"go.uber.org/zap"
)

// CacheRepository define la interfaz para operaciones de caché
type CacheRepository interface {
	Get(key string, dest interface{}) bool
	Set(key string, value interface{})
	Close()
}

// cacheRepository implementa CacheRepository con dos niveles:
// ccache en memoria y Memcached (opcional) compartido entre instancias
type cacheRepository struct {
	localCache      *ccache.Cache[[]byte]
	memcachedClient *memcache.Client
	ttl             time.Duration
	logger          *zap.Logger
}

// NewCacheRepository crea una nueva instancia de CacheRepository.
// Si memcachedHost está vacío solo se usa el caché local.
func NewCacheRepository(memcachedHost string, ttl time.Duration, logger *zap.Logger) CacheRepository {
	localCache := ccache.New(ccache.Configure[[]byte]().MaxSize(1000))

	var memcachedClient *memcache.Client
	if memcachedHost != "" {
		memcachedClient = memcache.New(memcachedHost)
		logger.Info("cache repository initialized with memcached", zap.String("host", memcachedHost))
	} else {
		logger.Info("cache repository initialized (local only)")
	}

	return &cacheRepository{
		localCache:      localCache,
		memcachedClient: memcachedClient,
		ttl:             ttl,
		logger:          logger,
	}
}

// Get busca primero en el caché local y después en Memcached.
// Devuelve false si no está o si no se pudo decodificar.
func (r *cacheRepository) Get(key string, dest interface{}) bool {
	// 1. Caché local
	item := r.localCache.Get(key)
	if item != nil && !item.Expired() {
		if err := json.Unmarshal(item.Value(), dest); err == nil {
			r.logger.Debug("cache hit (local)", zap.String("key", key))
			return true
		}
	}

	if r.memcachedClient == nil {
		return false
	}

	// 2. Memcached
	memcachedItem, err := r.memcachedClient.Get(key)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			r.logger.Warn("memcached get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(memcachedItem.Value, dest); err != nil {
		r.logger.Warn("invalid cached value", zap.String("key", key), zap.Error(err))
		return false
	}

	// 3. Guardar en local para las próximas consultas
	r.localCache.Set(key, memcachedItem.Value, r.ttl)
	r.logger.Debug("cache hit (memcached)", zap.String("key", key))
	return true
}

// Set guarda el valor en ambos niveles
func (r *cacheRepository) Set(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	r.localCache.Set(key, data, r.ttl)

	if r.memcachedClient == nil {
		return
	}

	err = r.memcachedClient.Set(&memcache.Item{
		Key:        key,
		Value:      data,
		Expiration: int32(r.ttl.Seconds()),
	})
	if err != nil {
		r.logger.Warn("memcached set failed", zap.String("key", key), zap.Error(err))
	}
}

// Close detiene la goroutine de limpieza de ccache
func (r *cacheRepository) Close() {
	r.localCache.Stop()
}
