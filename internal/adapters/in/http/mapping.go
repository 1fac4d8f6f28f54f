package http

import (
	"errors"

	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/generated/servers"
)

func toJobResponse(view queries.JobView) servers.Job {
	j := view.Job

	applications := make([]servers.Application, 0, len(j.Applications()))
	for _, a := range j.Applications() {
		applications = append(applications, servers.Application{
			WorkerId: a.WorkerID().String(),
			Status:   servers.ApplicationStatus(a.Status().String()),
		})
	}

	return servers.Job{
		Id:           j.ID().String(),
		Title:        j.Title(),
		Description:  j.Description(),
		Location:     j.Location(),
		Pay:          j.Pay(),
		PostedBy:     j.PostedBy().String(),
		Date:         j.Date().String(),
		StartTime:    j.StartTime().String(),
		EndTime:      j.EndTime().String(),
		Applications: applications,
		Filled:       view.Filled,
		Expired:      view.Expired,
	}
}

func toJobResponses(views []queries.JobView) []servers.Job {
	response := make([]servers.Job, 0, len(views))
	for _, v := range views {
		response = append(response, toJobResponse(v))
	}
	return response
}

func toWorkerJobResponses(views []queries.WorkerJobView) []servers.Job {
	response := make([]servers.Job, 0, len(views))
	for _, v := range views {
		r := toJobResponse(queries.JobView{
			Job:     v.Job,
			Filled:  v.Job.IsFilled(),
			Expired: v.Expired,
		})

		matches := v.Matches
		r.Matches = &matches
		if v.Application != nil {
			status := servers.ApplicationStatus(v.Application.Status().String())
			r.MyApplicationStatus = &status
		}

		response = append(response, r)
	}
	return response
}

func toUserResponse(u *user.User) servers.User {
	return servers.User{
		Id:       u.ID().String(),
		Username: u.Username(),
		Role:     servers.Role(u.Role().String()),
	}
}

func toAvailabilityResponse(blocks []kernel.TimeWindow) servers.Availability {
	response := servers.Availability{
		Availability: make([]servers.AvailabilityBlock, 0, len(blocks)),
	}
	for _, b := range blocks {
		response.Availability = append(response.Availability, servers.AvailabilityBlock{
			DayOfWeek: int(b.Day()),
			StartTime: b.Start().String(),
			EndTime:   b.End().String(),
		})
	}
	return response
}

// fromAvailabilityRequest converts every block and reports all malformed
// ones together.
func fromAvailabilityRequest(body servers.Availability) ([]kernel.TimeWindow, error) {
	blocks := make([]kernel.TimeWindow, 0, len(body.Availability))
	var errList []error

	for _, b := range body.Availability {
		start, startErr := kernel.ParseClockTime(b.StartTime)
		end, endErr := kernel.ParseClockTime(b.EndTime)
		if err := errors.Join(startErr, endErr); err != nil {
			errList = append(errList, err)
			continue
		}

		w, err := kernel.NewTimeWindow(b.DayOfWeek, start, end)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		blocks = append(blocks, w)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return blocks, nil
}
