package get_available_slots

import (
	"sort"

	"github.com/saraivajv/super1-booking-service/internal/domain"
	"github.com/saraivajv/super1-booking-service/pkg/types"
)

// generateCandidates генерирует кандидатов начала слота для одного окна
// доступности. Кандидаты идут от начала окна с фиксированным шагом
// domain.SlotStepMinutes; шаг не зависит от длительности услуги, поэтому
// соседние кандидаты могут пересекаться между собой.
//
// Кандидат эмитится только если слот целиком помещается в окно:
// candidateStart + duration <= window.EndTime. Граничный случай, когда
// конец слота совпадает с концом окна, даёт последний валидный кандидат.
func generateCandidates(window *domain.AvailabilityWindow, durationMinutes int) ([]types.TimeString, error) {
	candidates := make([]types.TimeString, 0)

	current := window.StartTime
	for {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// Конец слота вышел за границы суток — дальше кандидатов нет
			break
		}
		if slotEnd.IsAfter(window.EndTime) {
			break
		}

		candidates = append(candidates, current)

		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return candidates, nil
}

// markAvailability помечает каждый кандидат флагом доступности.
// Кандидат недоступен, если его интервал [start, start+duration)
// пересекается с интервалом любого активного бронирования по полуоткрытой
// семантике: slotStart < bookingEnd && slotEnd > bookingStart.
// Бронирование, заканчивающееся ровно в момент начала слота, не конфликтует.
func markAvailability(candidates []types.TimeString, durationMinutes int, bookings []*domain.Booking) []domain.Slot {
	slots := make([]domain.Slot, 0, len(candidates))

	for _, start := range candidates {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			continue
		}

		available := true
		for _, booking := range bookings {
			if !booking.IsActive() {
				continue
			}
			if booking.Overlaps(start, end) {
				available = false
				break
			}
		}

		slots = append(slots, domain.Slot{
			StartTime: start,
			Available: available,
		})
	}

	return slots
}

// sortSlots сортирует слоты по возрастанию времени начала.
// Порядок детерминирован для одного и того же набора окон и бронирований.
func sortSlots(slots []domain.Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})
}

// dedupeSlots схлопывает кандидатов с одинаковым временем начала.
// Пересекающиеся окна одного дня порождают одинаковых кандидатов с
// одинаковой доступностью, достаточно оставить первого. Вход должен быть
// отсортирован.
func dedupeSlots(slots []domain.Slot) []domain.Slot {
	if len(slots) < 2 {
		return slots
	}

	result := slots[:1]
	for _, slot := range slots[1:] {
		if slot.StartTime == result[len(result)-1].StartTime {
			continue
		}
		result = append(result, slot)
	}

	return result
}
