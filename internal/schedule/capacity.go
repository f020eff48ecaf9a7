package schedule

// capacityRule правило определения вместимости окна.
// Правила упорядочены по приоритету; каждое либо даёт окончательное значение,
// либо передаёт решение следующему.
type capacityRule func(w Window, tenantCapacity *int) (int, bool)

// capacityRules порядок приоритета: вместимость слота -> вместимость арендатора -> без лимита
var capacityRules = []capacityRule{
	windowCapacityRule,
	tenantCapacityRule,
}

// EffectiveCapacity возвращает действующую вместимость окна и признак её наличия.
// false во втором значении означает "без ограничения" - проверка занятости не выполняется.
// Это поведение арендаторов без кастомных слотов и без настроенной вместимости.
func EffectiveCapacity(w Window, tenantCapacity *int) (int, bool) {
	for _, rule := range capacityRules {
		if capacity, ok := rule(w, tenantCapacity); ok {
			return capacity, true
		}
	}
	return 0, false
}

// windowCapacityRule вместимость, заданная на самом окне (кастомном слоте)
func windowCapacityRule(w Window, _ *int) (int, bool) {
	if w.Capacity != nil && *w.Capacity > 0 {
		return *w.Capacity, true
	}
	return 0, false
}

// tenantCapacityRule общая вместимость арендатора как fallback
func tenantCapacityRule(_ Window, tenantCapacity *int) (int, bool) {
	if tenantCapacity != nil && *tenantCapacity > 0 {
		return *tenantCapacity, true
	}
	return 0, false
}
