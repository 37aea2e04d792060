package usecase

import (
	"sort"
	"time"
)

const groupDateLayout = "2006-01-02"

// GroupOrderRows группирует плоские строки отчёта по календарной дате.
// Перед усечением до даты к каждой метке времени применяется фиксированный
// сдвиг tzOffset от UTC. Внутри группы сохраняется порядок входных строк,
// сами группы упорядочены по дате согласно direction.
// Чистая функция: не мутирует вход и не имеет побочных эффектов.
func GroupOrderRows(rows []OrderRow, direction SortDirection, tzOffset time.Duration) []OrderGroup {
	byDate := make(map[string][]OrderGroupRow, len(rows))
	dates := make([]string, 0, len(rows))

	for _, row := range rows {
		date := row.CreatedAt.UTC().Add(tzOffset).Format(groupDateLayout)
		if _, ok := byDate[date]; !ok {
			dates = append(dates, date)
		}
		byDate[date] = append(byDate[date], OrderGroupRow{
			ProductName: row.ProductName,
			VariantName: row.VariantName,
			Qty:         row.Qty,
		})
	}

	// Лексикографический порядок дат формата YYYY-MM-DD совпадает с хронологическим
	if direction == SortDesc {
		sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	} else {
		sort.Strings(dates)
	}

	groups := make([]OrderGroup, 0, len(dates))
	for _, date := range dates {
		groups = append(groups, OrderGroup{
			OrderDate: date,
			Rows:      byDate[date],
		})
	}

	return groups
}
