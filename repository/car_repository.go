package repository

import "car-rental/domain"

type CarRepository interface {
	FindByID(id string) (domain.Car, error)
}
