package store

// RunStoreSuite 供外部测试包（如 redis 缓存）复用行为测试
var RunStoreSuite = runStoreSuite
